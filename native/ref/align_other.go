//go:build !amd64 && !arm64

package ref

func init() {
	initAlignment()
}
