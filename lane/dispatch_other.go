//go:build !amd64 && !arm64

package lane

func init() {
	setScalarMode()
	applyEnv()
}
