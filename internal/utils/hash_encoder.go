package utils

import (
	"github.com/speps/go-hashids/v2"
)

// HashEncoder 用于私钥落库前的编码, 避免以明文十六进制形式存储
type HashEncoder struct {
	hash *hashids.HashID
}

func NewHashEncoder(salt string) (*HashEncoder, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 16

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}

	return &HashEncoder{hash: h}, nil
}

func (encoder *HashEncoder) Encryption(plaintext string) (string, error) {
	return encoder.hash.EncodeHex(plaintext)
}

func (encoder *HashEncoder) Decryption(ciphertext string) (string, error) {
	return encoder.hash.DecodeHex(ciphertext)
}
