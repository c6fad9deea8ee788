package savers

import "errors"

var ErrUnknownScreensaver = errors.New("savers: unknown screensaver")
