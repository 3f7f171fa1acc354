package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/japaniel/tentoku/pkg/dictdb"
	"github.com/japaniel/tentoku/pkg/jmdictimport"
	"github.com/japaniel/tentoku/pkg/tokenizer"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	textFlag := flag.String("text", "", "Japanese text to tokenize")
	dbFlag := flag.String("db", "tentoku.db", "Path to SQLite dictionary database")
	importFlag := flag.String("import-dict", "", "Path to a jmdict-simplified JSON file to import")
	useTrieFlag := flag.Bool("trie", true, "Use the trie-accelerated dictionary index")
	flag.Parse()

	conn, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := dictdb.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if *importFlag != "" {
		fmt.Printf("Importing dictionary from %s...\n", *importFlag)
		count, err := jmdictimport.Import(conn, *importFlag)
		if err != nil {
			log.Fatalf("Failed to import dictionary: %v", err)
		}
		fmt.Printf("Imported %d entries.\n", count)
		return
	}

	if *textFlag == "" {
		log.Fatal("Please provide -text or -import-dict")
	}

	store := dictdb.NewStore(conn)
	var dict dictdb.Dictionary = store
	if *useTrieFlag {
		trieDict, err := dictdb.NewTrieDictionary(store)
		if err != nil {
			log.Fatalf("Failed to build trie index: %v", err)
		}
		dict = trieDict
	}

	tok := tokenizer.New(dict)
	tokens := tok.Tokenize(*textFlag)

	for _, t := range tokens {
		if t.DictionaryEntry == nil {
			fmt.Printf("%-10s (no dictionary entry)\n", t.Text)
			continue
		}
		entry := t.DictionaryEntry
		var gloss string
		if len(entry.Senses) > 0 && len(entry.Senses[0].Glosses) > 0 {
			gloss = entry.Senses[0].Glosses[0].Text
		}
		var reasons []string
		for _, chain := range t.DeinflectionReasons {
			for _, r := range chain {
				reasons = append(reasons, r.String())
			}
		}
		fmt.Printf("%-10s ent_seq=%-10s %s %v\n", t.Text, entry.EntSeq, gloss, reasons)
	}
}
