package main

import "github.com/podintel/podintel-api/cmd"

// @title           PodIntel API
// @version         1.0.0
// @description     Podcast transcription and summarization API. Register podcasts by RSS feed, request episode processing, and poll for transcripts and structured summaries.
// @contact.name    API Support
// @contact.url     https://github.com/podintel/podintel-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
