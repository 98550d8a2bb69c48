//go:build !unix

package repr

func accessMode(uintptr) string { return "" }
