// Package config manages user-level settings stored at ~/.skel/config.yaml.
// Every key can also be supplied through a SKEL_-prefixed environment
// variable (SKEL_TEMPLATE_DIR, SKEL_PYTHON, ...), which takes precedence over
// the file. Settings that are never set fall back to the defaults below.
package config
