// Package build runs one metadata build: discover pages, process them, date
// them, rewrite their routes and write the head manifest, sitemap and feed.
//
// Every entry point (the build command, watch mode, tests) goes through Service.Run.
package build
