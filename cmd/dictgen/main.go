// Command dictgen bootstraps a pinyin-keyed dict.txt from a character
// allowlist, using go-pinyin's heteronym mode to enumerate every
// reading of every allowed character.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/mozillazg/go-pinyin"
	"github.com/spf13/cobra"

	"github.com/mengyao/hanyin/internal/charset"
)

func main() {
	var charsPath, outPath string

	root := &cobra.Command{
		Use:   "dictgen",
		Short: "Generate a pinyin-keyed dictionary file from a character allowlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			allow, err := charset.Load(charsPath)
			if err != nil {
				return fmt.Errorf("load charset: %w", err)
			}

			pinyinArgs := pinyin.NewArgs()
			pinyinArgs.Style = pinyin.Normal
			pinyinArgs.Heteronym = true

			entries := make(map[string][]rune)
			for r := range allow {
				readings := pinyin.Pinyin(string(r), pinyinArgs)
				for _, group := range readings {
					for _, reading := range group {
						entries[reading] = append(entries[reading], r)
					}
				}
			}

			keys := make([]string, 0, len(entries))
			for k := range entries {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer out.Close()

			writer := bufio.NewWriter(out)
			defer writer.Flush()
			for _, key := range keys {
				chars := entries[key]
				sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
				fmt.Fprint(writer, key)
				for _, c := range chars {
					fmt.Fprintf(writer, " %c", c)
				}
				fmt.Fprintln(writer)
			}
			return nil
		},
	}

	root.Flags().StringVarP(&charsPath, "chars", "c", "", "path to the character allowlist file (required)")
	root.Flags().StringVarP(&outPath, "output", "o", "dict.txt", "output path for the generated dictionary")
	_ = root.MarkFlagRequired("chars")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
