// Package platform hides the operating-system differences the scaffolder
// runs into: Unix permission bits (ignored on Windows) and the layout of a
// Python virtual environment (bin/ versus Scripts/).
package platform
