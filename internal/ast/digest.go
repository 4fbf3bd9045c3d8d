// Package ast defines the kernel's core term representation: an immutable,
// structurally-shared expression tree with de Bruijn indices and a
// content-addressed semantic digest on every node.
//
// Digests are computed once at construction and never recomputed; equal
// digests mean structurally identical de-Bruijn terms, which (after
// normalization) means definitionally equal terms. Nothing here looks at
// source positions — that is the job of the surface layer.
package ast

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest is a 256-bit content hash of an expression.
type Digest [32]byte

// tag bytes, one per variant, kept stable so digests don't change across
// builds.
const (
	tagInd       byte = 2
	tagVcon      byte = 3
	tagMatch     byte = 4
	tagFun       byte = 5
	tagApp       byte = 6
	tagFor       byte = 7
	tagDeb       byte = 8
	tagUniverse  byte = 9
	tagVconDef   byte = 10
	tagMatchCase byte = 11
	tagEnd       byte = 1
	tagSlice     byte = 12
)

// digester accumulates tag-delimited fields into a SHA-256 hash.
type digester struct {
	h [32]byte
	b []byte
}

func newDigester(tag byte) *digester {
	d := &digester{}
	d.b = append(d.b, tag)
	return d
}

func (d *digester) digest(child Digest) *digester {
	d.b = append(d.b, child[:]...)
	d.b = append(d.b, tagEnd)
	return d
}

func (d *digester) nat(n uint64) *digester {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	d.b = append(d.b, buf[:]...)
	d.b = append(d.b, tagEnd)
	return d
}

func (d *digester) bytes(raw []byte) *digester {
	d.b = append(d.b, raw...)
	d.b = append(d.b, tagEnd)
	return d
}

func (d *digester) slice(digests []Digest) *digester {
	d.b = append(d.b, tagSlice)
	for _, c := range digests {
		d.b = append(d.b, c[:]...)
	}
	d.b = append(d.b, tagEnd)
	return d
}

func (d *digester) finish() Digest {
	d.b = append(d.b, tagEnd)
	return Digest(sha256.Sum256(d.b))
}

func digestsOf(exprs []Expr) []Digest {
	out := make([]Digest, len(exprs))
	for i, e := range exprs {
		out[i] = e.Digest()
	}
	return out
}
