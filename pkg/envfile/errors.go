package envfile

import "errors"

var (
	// Template loading errors
	ErrTemplateMissing    = errors.New("template not found")
	ErrTemplateUnreadable = errors.New("template unreadable")
	ErrTemplateNotUTF8    = errors.New("template is not valid UTF-8")
	ErrTemplateTooLarge   = errors.New("template exceeds maximum size")

	// Output errors
	ErrOutputUnwritable  = errors.New("output unwritable")
	ErrOutputIsDirectory = errors.New("output path is a directory")
)
