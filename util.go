// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

func maskToWidth(value uint64, width uint32) uint64 {
	if width >= 64 {
		return value
	}
	return value & ((uint64(1) << width) - 1)
}
