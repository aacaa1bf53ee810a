// Package secret generates the application secret written into a new
// project's .env file.
package secret
