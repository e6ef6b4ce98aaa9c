// Command evaluate runs a round-trip accuracy check: each gold-text
// sentence is romanized to pinyin, decoded back through the trained
// model, and compared against the original.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mozillazg/go-pinyin"
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
	var dictPath, modelPath, goldPath string
	var quiet bool

	root := &cobra.Command{
		Use:   "evaluate",
		Short: "Measure decode round-trip accuracy against gold-standard text",
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

			f, err := os.Open(goldPath)
			if err != nil {
				return fmt.Errorf("open gold text: %w", err)
			}
			defer f.Close()

			pinyinArgs := pinyin.NewArgs()
			pinyinArgs.Style = pinyin.Normal

			var correct, total int
			scanner := bufio.NewScanner(f)
			for scanner.Scan() {
				want := scanner.Text()
				if want == "" {
					continue
				}
				syllables := pinyin.Pinyin(want, pinyinArgs)
				pinyins := make([]string, 0, len(syllables))
				for _, readings := range syllables {
					if len(readings) == 0 {
						continue
					}
					pinyins = append(pinyins, readings[0])
				}

				got := decode.Decode(pinyins, eng, d)
				total++
				if got == want {
					correct++
				} else {
					logger.Debug().Str("want", want).Str("got", got).Msg("decode mismatch")
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read gold text: %w", err)
			}

			accuracy := 0.0
			if total > 0 {
				accuracy = float64(correct) / float64(total)
			}
			logger.Info().Int("correct", correct).Int("total", total).Float64("accuracy", accuracy).Msg("evaluation complete")
			fmt.Printf("%d/%d correct (%.2f%%)\n", correct, total, accuracy*100)
			return nil
		},
	}

	root.Flags().StringVarP(&dictPath, "dict", "d", "", "path to the pinyin dictionary file (required)")
	root.Flags().StringVarP(&modelPath, "engine", "e", "", "path to the trained model document (required)")
	root.Flags().StringVarP(&goldPath, "input", "i", "", "path to gold-standard text, one sentence per line (required)")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress info-level logging")
	_ = root.MarkFlagRequired("dict")
	_ = root.MarkFlagRequired("engine")
	_ = root.MarkFlagRequired("input")

	config.BindFlags(root, v)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
