package fr24

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// NodeScraper is the legacy fetch collaborator: a node.js script that
// scrapes the history table and prints the cell matrix as JSON on stdout.
// Empty stdout means the source had nothing for the argument.
type NodeScraper struct {
	Node   string // node binary; "" picks a platform default
	Script string // path to the scraper script
}

func NewNodeScraper(script string) *NodeScraper {
	node := "node"
	if runtime.GOOS == "windows" {
		node = "node.exe"
	}
	return &NodeScraper{Node: node, Script: script}
}

func (ns *NodeScraper) LookupHistory(kind Kind, arg string) (*HistoryResult, error) {
	if !kind.Valid() {
		return nil, ErrBadKind
	}

	out, err := exec.Command(ns.Node, ns.Script,
		fmt.Sprintf("%s=%s", kind, strings.ToLower(arg))).Output()
	if err != nil {
		return nil, fmt.Errorf("fr24: scraper exec failed for %s=%s: %v", kind, arg, err)
	}
	if len(strings.TrimSpace(string(out))) == 0 {
		return &HistoryResult{Query: arg}, nil
	}

	matrix, err := decodeMatrix(out)
	if err != nil {
		return nil, fmt.Errorf("fr24: scraper output for %s=%s: %v", kind, arg, err)
	}
	return &HistoryResult{Query: arg, Rows: DecodeRows(matrix)}, nil
}

// decodeMatrix parses the scraper's JSON. The script single-quotes its
// strings, and flattens a single-leg history into one bare row; both
// quirks get undone here.
func decodeMatrix(body []byte) ([][]string, error) {
	cleaned := []byte(strings.ReplaceAll(string(body), "'", `"`))

	matrix := [][]string{}
	if err := json.Unmarshal(cleaned, &matrix); err == nil {
		return matrix, nil
	}

	row := []string{}
	if err := json.Unmarshal(cleaned, &row); err != nil {
		return nil, err
	}
	return [][]string{row}, nil
}
