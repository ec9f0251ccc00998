//go:build !runnerdebug

package runner

const strictGeometry = false
