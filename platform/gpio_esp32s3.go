//go:build esp32s3

package platform

const maxGPIO = 48
