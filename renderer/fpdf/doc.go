// Package fpdf adapts the github.com/go-pdf/fpdf engine to the
// pdffer.Renderer contract. A template supplies a Layout function that draws
// its payload onto the document; the renderer owns page setup, error
// collection, and producing the final bytes.
package fpdf
