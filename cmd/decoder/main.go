// Command decoder converts whitespace-separated pinyin syllable lines
// read from stdin into their most likely Chinese rendering, one line
// of output per line of input.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mengyao/hanyin/internal/config"
	"github.com/mengyao/hanyin/internal/decode"
	"github.com/mengyao/hanyin/internal/dict"
	"github.com/mengyao/hanyin/internal/logging"
	"github.com/mengyao/hanyin/internal/model"
)

func main() {
	v := viper.New()
	var dictPath, modelPath, outPath string
	var quiet bool

	root := &cobra.Command{
		Use:   "decoder",
		Short: "Decode pinyin syllable lines into Chinese characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(quiet)
			scoring := config.FromViper(v)

			d, err := dict.Load(dictPath)
			if err != nil {
				return fmt.Errorf("load dict: %w", err)
			}
			eng, err := model.Load(modelPath, scoring)
			if err != nil {
				return fmt.Errorf("load model: %w", err)
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			scanner := bufio.NewScanner(os.Stdin)
			writer := bufio.NewWriter(out)
			defer writer.Flush()

			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					fmt.Fprintln(writer)
					continue
				}
				pinyins := strings.Fields(line)
				result := decode.Decode(pinyins, eng, d)
				if result == "" {
					logger.Debug().Str("input", line).Msg("decode produced no candidate path")
				}
				fmt.Fprintln(writer, result)
			}
			return scanner.Err()
		},
	}

	root.Flags().StringVarP(&dictPath, "dict", "d", "", "path to the pinyin dictionary file (required)")
	root.Flags().StringVarP(&modelPath, "engine", "e", "", "path to the trained model document (required)")
	root.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: stdout)")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress info-level logging")
	_ = root.MarkFlagRequired("dict")
	_ = root.MarkFlagRequired("engine")

	config.BindFlags(root, v)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
