package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/TFMV/AddressLexer/internal/dra"
	"github.com/TFMV/AddressLexer/internal/tokenizer"
	"github.com/TFMV/AddressLexer/pkg/utils"
)

func main() {
	csvPath := flag.String("file", "", "CSV file of raw addresses; stdin lines are used when omitted")
	showKinds := flag.Bool("kinds", false, "Print the grammar kinds matched by each token")
	flag.Parse()

	logger := utils.NewLogger("addresslexer ")

	rules := dra.NewRules()
	tok := tokenizer.New(rules, dra.Kinds())

	var addresses []string
	if *csvPath != "" {
		f, err := os.Open(*csvPath)
		if err != nil {
			logger.Fatal("Failed to open %s: %v", *csvPath, err)
		}
		defer f.Close()

		addresses, err = utils.ReadAddressCSV(f)
		if err != nil {
			logger.Fatal("Failed to read %s: %v", *csvPath, err)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				addresses = append(addresses, line)
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Fatal("Failed to read stdin: %v", err)
		}
	}

	for _, raw := range addresses {
		cleaned := rules.RunSpecialRules(rules.CleanSentence(raw))
		fmt.Println(cleaned)
		if *showKinds {
			for _, t := range tok.TokenizeCleaned(cleaned) {
				fmt.Printf("  %-20s %s\n", t.Text, strings.Join(t.Kinds, ","))
			}
		}
	}
}
