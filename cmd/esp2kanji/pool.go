package main

import (
	"context"

	esp2kanji "github.com/takatakatake/go-esp2kanji"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input esp2kanji.Input) (*esp2kanji.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*esp2kanji.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (CLIConverter, error)
	Release(CLIConverter)
	Size() int
}

// converterPool adapts esp2kanji.ConverterPool to the Pool interface.
type converterPool struct {
	pool *esp2kanji.ConverterPool
}

func newConverterPool(n int, opts ...esp2kanji.Option) *converterPool {
	return &converterPool{pool: esp2kanji.NewConverterPool(n, opts...)}
}

func (p *converterPool) Acquire(ctx context.Context) (CLIConverter, error) {
	conv, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (p *converterPool) Release(conv CLIConverter) {
	if c, ok := conv.(*esp2kanji.Converter); ok {
		p.pool.Release(c)
	}
}

func (p *converterPool) Size() int {
	return p.pool.Size()
}

func (p *converterPool) Close() error {
	return p.pool.Close()
}
