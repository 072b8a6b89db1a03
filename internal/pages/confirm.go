package pages

// Confirmer blocks a destructive action pending a yes/no decision. The web
// layer answers through the browser's confirm dialog before the request is
// posted; tests substitute their own implementation.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(message string) bool

func (f ConfirmerFunc) Confirm(message string) bool { return f(message) }

// AlwaysConfirm answers yes to every prompt. Used by the console server,
// where the confirmation already happened client-side.
var AlwaysConfirm Confirmer = ConfirmerFunc(func(string) bool { return true })
