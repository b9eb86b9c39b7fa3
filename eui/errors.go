package eui

import "errors"

var (
	ErrNoMainWindow       = errors.New("no \"Main\" window")
	ErrUnknownWindow      = errors.New("unknown window")
	ErrUnknownControlType = errors.New("unknown control type")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrNoFileDialog       = errors.New("no file dialog available")
	ErrDialogCancelled    = errors.New("dialog cancelled")
	ErrUnsupportedIcon    = errors.New("unsupported icon format")
	ErrNoTextureProvider  = errors.New("no texture provider")
)
