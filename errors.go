// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcopy

import (
	"fmt"
	"runtime"

	vk "github.com/goki/vulkan"
)

func IsError(ret vk.Result) bool {
	return ret != vk.Success
}

func NewError(ret vk.Result) error {
	if ret != vk.Success {
		pc, _, _, ok := runtime.Caller(1)
		if !ok {
			return fmt.Errorf("vulkan error: %s (%d)",
				vk.Error(ret).Error(), ret)
		}
		fn := runtime.FuncForPC(pc)
		file, line := fn.FileLine(pc)
		return fmt.Errorf("vulkan error: %s (%d) on %s %s:%d",
			vk.Error(ret).Error(), ret, fn.Name(), file, line)
	}
	return nil
}

func IfPanic(err error, finalizers ...func()) {
	if err != nil {
		for _, fn := range finalizers {
			fn()
		}
		panic(err)
	}
}

func CheckErr(err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("%+v", v)
	}
}
