package main

import (
	"fmt"

	"github.com/rib-format/go-rib/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, err := readRIB(cc, file)
		if err != nil {
			return err
		}
		toks, tErr := token.Tokenize(nil, d)
		if !cfg.Comments {
			toks = dropComments(toks)
		}
		if err := token.Fprint(cc.Out, toks); err != nil {
			return err
		}
		if tErr != nil {
			return fmt.Errorf("error tokenizing %s: %w", file, tErr)
		}
	}
	return nil
}

func dropComments(toks []token.Token) []token.Token {
	res := toks[:0]
	for _, t := range toks {
		if t.Type != token.TComment {
			res = append(res, t)
		}
	}
	return res
}
