// Package iox provides convenience helpers around file handles: opening
// paths under optional compression, iterators that release their source
// when the sequence ends, and handles that either own or borrow an
// underlying stream.
package iox
