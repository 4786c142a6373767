package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/multiformats/go-multibase"
	"github.com/spf13/cobra"
	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/registry"
	"golang.org/x/sync/errgroup"
)

// SumOptions are the flags of the sum command.
type SumOptions struct {
	Algorithm   string `validate:"required"`
	Seed        uint64
	Key0        uint64
	Key1        uint64
	BigEndian   bool
	Format      string `validate:"oneof=hex HEX bin binpad base64 multibase cid"`
	Offset      int    `validate:"min=0"`
	Length      int    `validate:"min=-1"`
	Text        string
	Concurrency int `validate:"min=1"`
}

func (o *SumOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", "xxh3-64",
		"algorithm identifier, see the list command")
	cmd.Flags().Uint64Var(&o.Seed, "seed", 0,
		"seed for MurmurHash and xxHash")
	cmd.Flags().Uint64Var(&o.Key0, "key0", 0,
		"low half of the SipHash key")
	cmd.Flags().Uint64Var(&o.Key1, "key1", 0,
		"high half of the SipHash key")
	cmd.Flags().BoolVar(&o.BigEndian, "big-endian", false,
		"emit Adler checksums most significant byte first")
	cmd.Flags().StringVarP(&o.Format, "format", "f", "hex",
		"output format (hex, HEX, bin, binpad, base64, multibase, cid)")
	cmd.Flags().IntVar(&o.Offset, "offset", 0,
		"hash from this byte offset of each input")
	cmd.Flags().IntVar(&o.Length, "length", -1,
		"hash this many bytes of each input, -1 for the rest")
	cmd.Flags().StringVar(&o.Text, "text", "",
		"hash this UTF-8 text instead of files")
	cmd.Flags().IntVarP(&o.Concurrency, "concurrency", "j", 4,
		"number of inputs hashed at once")
}

func (o *SumOptions) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func (o *SumOptions) registryOptions(cmd *cobra.Command) []registry.Option {
	var opts []registry.Option
	if cmd.Flags().Changed("seed") || o.Seed != 0 {
		opts = append(opts, registry.WithSeed(o.Seed))
	}
	if cmd.Flags().Changed("key0") || cmd.Flags().Changed("key1") || o.Key0 != 0 || o.Key1 != 0 {
		opts = append(opts, registry.WithKey(o.Key0, o.Key1))
	}
	if o.BigEndian {
		opts = append(opts, registry.WithBigEndian())
	}
	return opts
}

type input struct {
	name string
	load func() ([]byte, error)
}

func newSum(ro *RootOptions) *cobra.Command {
	o := &SumOptions{}
	cmd := &cobra.Command{
		Use:   "sum [flags] [FILE...]",
		Short: "Hash files, standard input or text.",
		Long: `Hash each FILE and print one line per input: the rendered digest followed by
the input name. With no FILE, or when FILE is -, standard input is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			logger, err := ro.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			opts := append(o.registryOptions(cmd), registry.WithLogger(logger))
			h, err := registry.New(o.Algorithm, opts...)
			if err != nil {
				return err
			}

			inputs, err := o.inputs(cmd, args)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			lines, err := o.sumAll(ctx, h, inputs)
			if err != nil {
				return err
			}
			for _, line := range lines {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	o.AddFlags(cmd)
	return cmd
}

func (o *SumOptions) inputs(cmd *cobra.Command, args []string) ([]input, error) {
	if cmd.Flags().Changed("text") || o.Text != "" {
		if len(args) > 0 {
			return nil, failure.NewInvalidArgumentErrorf("text", "cannot be combined with files")
		}
		text := o.Text
		return []input{{strconv.Quote(text), func() ([]byte, error) { return []byte(text), nil }}}, nil
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	// stdin is read at most once however many times "-" is named
	in := cmd.InOrStdin()
	stdin := sync.OnceValues(func() ([]byte, error) { return io.ReadAll(in) })
	inputs := make([]input, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			inputs = append(inputs, input{"-", stdin})
			continue
		}
		path := arg
		inputs = append(inputs, input{path, func() ([]byte, error) { return os.ReadFile(path) }})
	}
	return inputs, nil
}

// sumAll hashes every input and returns the output lines in input order.
func (o *SumOptions) sumAll(ctx context.Context, h hash.Hasher, inputs []input) ([]string, error) {
	lines := make([]string, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			data, err := in.load()
			if err != nil {
				return fmt.Errorf("reading %s: %w", in.name, err)
			}
			length := o.Length
			if length < 0 {
				length = max(len(data)-o.Offset, 0)
			}
			v, err := hash.SumRange(ctx, h, data, o.Offset, length)
			if err != nil {
				return fmt.Errorf("hashing %s: %w", in.name, err)
			}
			out, err := render(v, o.Format)
			if err != nil {
				return err
			}
			lines[i] = out + "  " + in.name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}

func render(v value.HashValue, format string) (string, error) {
	switch format {
	case "hex":
		return v.Hex(false), nil
	case "HEX":
		return v.Hex(true), nil
	case "bin":
		return v.Binary(false), nil
	case "binpad":
		return v.Binary(true), nil
	case "base64":
		return v.Base64(), nil
	case "multibase":
		return v.Multibase(multibase.Base32)
	case "cid":
		return v.CID().String(), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
