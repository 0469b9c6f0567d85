// Package wavio reads and writes mono PCM WAV files as [fft.Sequence] values.
//
// Decoding keeps the first channel of every frame, normalises integer samples
// to [-1, 1) and leaves every imaginary part at zero. Encoding writes only the
// real part of each sample; imaginary residue from the transforms is dropped.
//
//	seq, format, err := wavio.Read("input.wav")
//	...
//	err = wavio.Write("output.wav", result, format)
package wavio
