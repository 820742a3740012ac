// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TFMV/AddressLexer/internal/dra"
	"github.com/TFMV/AddressLexer/internal/lexer"
	"github.com/TFMV/AddressLexer/internal/stats"
	"github.com/TFMV/AddressLexer/internal/tokenizer"
	"github.com/TFMV/AddressLexer/pkg/db"
	"github.com/TFMV/AddressLexer/pkg/utils"
)

// CleanRequest is a single address to normalize.
type CleanRequest struct {
	Address string `json:"address" binding:"required"`
}

// CleanResponse carries the cleaned sentence and its token breakdown.
type CleanResponse struct {
	Cleaned    string            `json:"cleaned"`
	PostalJunk bool              `json:"postal_junk"`
	Tokens     []tokenizer.Token `json:"tokens"`
}

// CleanSingleHandler normalizes one address.
func CleanSingleHandler(rules lexer.LexicalRules, tok *tokenizer.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CleanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cleaned := rules.RunSpecialRules(rules.CleanSentence(req.Address))
		c.JSON(http.StatusOK, CleanResponse{
			Cleaned:    cleaned,
			PostalJunk: strings.Contains(cleaned, dra.PostalAddressElement),
			Tokens:     tok.TokenizeCleaned(cleaned),
		})
	}
}

// CleanBatchHandler accepts a CSV upload of raw addresses, cleans every
// row, stores the run, and returns its summary.
func CleanBatchHandler(pool *pgxpool.Pool, rules lexer.LexicalRules) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()

		addresses, err := utils.ReadAddressCSV(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to read CSV: %v", err)})
			return
		}

		runID, err := db.CreateRun(c.Request.Context(), pool, "Batch Address Cleaning")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create run: %v", err)})
			return
		}

		records := make([]db.Record, 0, len(addresses))
		statRecords := make([]stats.Record, 0, len(addresses))
		for _, raw := range addresses {
			cleaned := rules.RunSpecialRules(rules.CleanSentence(raw))
			records = append(records, db.Record{
				RunID:      runID,
				Raw:        raw,
				Cleaned:    cleaned,
				PostalJunk: strings.Contains(cleaned, dra.PostalAddressElement),
				TokenCount: len(strings.Fields(cleaned)),
			})
			statRecords = append(statRecords, stats.Record{Raw: raw, Cleaned: cleaned})
		}

		if err := db.InsertRecords(c.Request.Context(), pool, records); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to store records: %v", err)})
			return
		}

		summary, err := stats.Summarize(statRecords)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to summarize run: %v", err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Batch cleaned successfully",
			"run_id":  runID,
			"data":    summary,
		})
	}
}

// RunSummaryHandler recomputes the summary for a stored run.
func RunSummaryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		runID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
			return
		}

		records, err := db.LoadRunRecords(c.Request.Context(), pool, runID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to load run: %v", err)})
			return
		}
		if len(records) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("run %d not found", runID)})
			return
		}

		statRecords := make([]stats.Record, 0, len(records))
		for _, r := range records {
			statRecords = append(statRecords, stats.Record{Raw: r.Raw, Cleaned: r.Cleaned})
		}

		summary, err := stats.Summarize(statRecords)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to summarize run: %v", err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"run_id": runID,
			"data":   summary,
		})
	}
}

// HealthCheckHandler handles health check requests
func HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		zuluTime := time.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"zuluTime": zuluTime,
		})
	}
}

// SetupRoutes wires the handlers onto the router.
func SetupRoutes(router *gin.Engine, pool *pgxpool.Pool, rules lexer.LexicalRules, tok *tokenizer.Tokenizer) {
	router.Use(RequestLogger())
	router.Use(ErrorHandler())

	router.GET("/health", HealthCheckHandler())
	router.POST("/clean", CleanSingleHandler(rules, tok))
	router.POST("/clean-batch", CleanBatchHandler(pool, rules))
	router.GET("/runs/:id/summary", RunSummaryHandler(pool))
}
