//go:build esp32 && !esp32s3

package platform

const maxGPIO = 39
