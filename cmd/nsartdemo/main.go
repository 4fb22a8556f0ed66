// Command nsartdemo builds a name index from a zone-style list of names
// and answers lookups and prefix queries against it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/k0ekk0ek/namedb/pkg/arena"
	"github.com/k0ekk0ek/namedb/pkg/artnode"
	"github.com/k0ekk0ek/namedb/pkg/arttree"
	"github.com/k0ekk0ek/namedb/pkg/dnskey"
	"github.com/k0ekk0ek/namedb/pkg/dnswire"
)

func main() {
	log.SetFlags(0)

	zoneFile := flag.String("zone", "", "path to a file of names, one per line (default: stdin)")
	prefix := flag.String("prefix", "", "if set, print the value of every loaded name under this prefix instead of doing point lookups")
	flag.Parse()

	in := os.Stdin
	if *zoneFile != "" {
		f, err := os.Open(*zoneFile)
		if err != nil {
			log.Fatalf("nsartdemo: %v", err)
		}
		defer f.Close()
		in = f
	}

	a := new(arena.Arena)
	tr, ok := arttree.NewTree[string](a)
	if !ok {
		log.Fatal("nsartdemo: failed to allocate tree root")
	}

	n, err := load(a, tr, in)
	if err != nil {
		log.Fatalf("nsartdemo: %v", err)
	}
	log.Printf("loaded %d names", n)

	if *prefix != "" {
		runPrefixQuery(tr, *prefix)
		return
	}

	for _, name := range flag.Args() {
		runLookup(tr, name)
	}
}

// load reads one presentation-form name per line from r, with an
// optional whitespace-separated value after the name, and inserts each
// into tr. Blank lines and lines starting with ';' are ignored, the way
// a zone file comment would be.
func load(a artnode.Allocator, tr *arttree.Tree[string], r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		name, value := line, ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			name, value = line[:i], strings.TrimSpace(line[i+1:])
		}

		wire, err := dnswire.ParsePresentation(name)
		if err != nil {
			return count, fmt.Errorf("line %q: %w", line, err)
		}
		key, err := dnskey.MakeKey(wire)
		if err != nil {
			return count, fmt.Errorf("line %q: %w", line, err)
		}

		leaf, res := tr.Insert(a, key)
		if res != arttree.Ok {
			return count, fmt.Errorf("line %q: %s", line, res)
		}
		leaf.Value = value
		count++
	}

	return count, scanner.Err()
}

func runLookup(tr *arttree.Tree[string], name string) {
	wire, err := dnswire.ParsePresentation(name)
	if err != nil {
		log.Printf("%s: %v", name, err)
		return
	}
	key, err := dnskey.MakeKey(wire)
	if err != nil {
		log.Printf("%s: %v", name, err)
		return
	}

	found := tr.Search(key)
	if found.IsNone() {
		log.Printf("%s: not found", name)
		return
	}
	log.Printf("%s: %s", name, found.Unwrap().Value)
}

func runPrefixQuery(tr *arttree.Tree[string], name string) {
	wire, err := dnswire.ParsePresentation(name)
	if err != nil {
		log.Printf("%s: %v", name, err)
		return
	}
	key, err := dnskey.MakeKey(wire)
	if err != nil {
		log.Printf("%s: %v", name, err)
		return
	}
	// Strip the terminator so every name under the zone, including the
	// apex itself, shares the resulting prefix.
	if len(key) > 0 {
		key = key[:len(key)-1]
	}

	count := 0
	tr.VisitPrefix(key, func(_ []byte, value *string) bool {
		count++
		fmt.Printf("%s\n", *value)
		return false
	})
	log.Printf("%s: %d names", name, count)
}
