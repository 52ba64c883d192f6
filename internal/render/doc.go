// Package render writes the build artifacts: the head manifest, sitemap.xml
// and the RSS feed.
package render
