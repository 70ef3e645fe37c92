// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoDecoder = errors.New("no registered decoder claimed the stream")
)
