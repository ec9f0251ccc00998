//go:build runnerdebug

package runner

const strictGeometry = true
