package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/TFMV/AddressLexer/internal/dra"
	"github.com/TFMV/AddressLexer/internal/lexer"
	"github.com/TFMV/AddressLexer/internal/tokenizer"
	"github.com/TFMV/AddressLexer/pkg/api"
	"github.com/TFMV/AddressLexer/pkg/config"
	"github.com/TFMV/AddressLexer/pkg/db"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Println("Config loaded successfully")

	rules, err := rulesetFor(cfg.Lexer.Jurisdiction)
	if err != nil {
		log.Fatalf("Failed to select ruleset: %v", err)
	}
	tok := tokenizer.New(rules, dra.Kinds())

	pool, err := db.NewConnection(context.Background(), db.DBCreds{
		Host:     cfg.DBCreds.Host,
		Port:     cfg.DBCreds.Port,
		Username: cfg.DBCreds.Username,
		Password: cfg.DBCreds.Password,
		Database: cfg.DBCreds.Database,
	})
	if err != nil {
		log.Fatalf("Failed to create database connection pool: %v", err)
	}
	defer pool.Close()
	fmt.Println("Database connection pool created successfully")

	router := gin.Default()
	api.SetupRoutes(router, pool, rules, tok)
	fmt.Printf("Starting server on %s\n", cfg.Server.Addr)
	log.Fatal(router.Run(cfg.Server.Addr))
}

// rulesetFor selects a lexical ruleset by explicit configuration. Only BC
// civic addressing ships today.
func rulesetFor(jurisdiction string) (lexer.LexicalRules, error) {
	switch jurisdiction {
	case "dra", "bc":
		return dra.NewRules(), nil
	default:
		return nil, fmt.Errorf("unknown jurisdiction %q", jurisdiction)
	}
}
