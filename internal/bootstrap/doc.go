// Package bootstrap runs the tool-chain commands that turn a freshly copied
// project into a working checkout: the Python virtual environment, the npm
// and pip installs, and the git repository.
package bootstrap
