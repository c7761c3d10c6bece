// jellyork scans a Jellyfin media library and renders a catalog document.
package main

func main() {
	Execute()
}
