// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import "fmt"

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
