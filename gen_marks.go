//go:build generate

// This program generates the combining diacritical mark table from the Unicode
// Character Database Blocks.txt file.
//
//go:generate go run gen_marks.go

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	blocksURL = `https://www.unicode.org/Public/17.0.0/ucd/Blocks.txt`
)

// The regular expression for a line containing a block range.
var blockPattern = regexp.MustCompile(`^([0-9A-F]{4,6})\.\.([0-9A-F]{4,6})\s*;\s*(.+)$`)

// The blocks whose code points are stripped during transliteration.
var markBlocks = map[string]bool{
	"Combining Diacritical Marks":             true,
	"Combining Diacritical Marks Extended":    true,
	"Combining Diacritical Marks Supplement":  true,
	"Combining Diacritical Marks for Symbols": true,
	"Combining Half Marks":                    true,
}

func main() {
	log.SetPrefix("gen_marks: ")
	log.SetFlags(0)

	src, err := parse()
	if err != nil {
		log.Fatal(err)
	}

	// Format the Go code.
	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	// Save it to the target file.
	log.Print("Writing to marks.go")
	if err := os.WriteFile("marks.go", formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

func parse() (string, error) {
	log.Printf("Parsing %s", blocksURL)
	res, err := http.Get(blocksURL)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	// Temporary buffer to hold block ranges.
	var blocks [][3]string

	// Parse the file.
	scanner := bufio.NewScanner(res.Body)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines.
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		from, to, name, err := parseBlock(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %v", num, err)
		}
		if !markBlocks[name] {
			continue
		}
		blocks = append(blocks, [3]string{from, to, name})
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	if len(blocks) != len(markBlocks) {
		return "", fmt.Errorf("found %d of %d combining mark blocks", len(blocks), len(markBlocks))
	}

	// Sort blocks.
	sort.Slice(blocks, func(i, j int) bool {
		left, _ := strconv.ParseUint(blocks[i][0], 16, 64)
		right, _ := strconv.ParseUint(blocks[j][0], 16, 64)
		return left < right
	})

	// Header.
	var buf bytes.Buffer
	buf.WriteString(`// Code generated via go generate from gen_marks.go. DO NOT EDIT.

package lexsort

// markCodePoints are taken from
// ` + blocksURL + `
// on ` + time.Now().Format("January 2, 2006") + `. See https://www.unicode.org/license.html for the Unicode
// license agreement.
var markCodePoints = [][3]int{
`)

	// Blocks.
	for _, block := range blocks {
		fmt.Fprintf(&buf, "\t{0x%s, 0x%s, clMark}, // %s\n", block[0], block[1], block[2])
	}

	// Tail.
	buf.WriteString("}\n")

	return buf.String(), nil
}

// parseBlock parses a line containing a block range.
func parseBlock(line string) (from, to, name string, err error) {
	fields := blockPattern.FindStringSubmatch(line)
	if fields == nil {
		err = errors.New("no block range found")
		return
	}
	from = fields[1]
	to = fields[2]
	name = strings.TrimSpace(fields[3])
	return
}
