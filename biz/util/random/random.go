package random

import "github.com/bytedance/gopkg/lang/fastrand"

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func RandStr(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = letters[fastrand.Intn(len(letters))]
	}
	return string(b)
}
