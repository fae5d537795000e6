package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"cdn-manager/core/resource"

	"github.com/spf13/pflag"
)

// Prints the kind every object of a StrikeTracker response classifies as.
// Reads the file named by the first argument, or stdin.
func main() {
	explain := pflag.BoolP("explain", "e", false, "List the required keys each object lacks for the kinds it nearly matched")
	pflag.Parse()

	data, err := readInput(pflag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Classifier order: %s\n\n", joinKinds(resource.ClassifierOrder()))
	walk("$", raw, *explain)

	if _, ok := raw.(map[string]any); !ok {
		return
	}
	rec, err := resource.Decode(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nTop-level record: %s\n", rec.Kind())
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// walk visits children before parents, the order the decoder classifies in.
func walk(path string, v any, explain bool) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walk(path+"."+k, t[k], explain)
		}

		kind := resource.DecodeTree(clone(t).(map[string]any)).Kind()
		fmt.Printf("%-50s %s\n", path, kind)
		if explain && kind == resource.KindUnrecognized {
			printNearMisses(t)
		}
	case []any:
		for i, item := range t {
			walk(fmt.Sprintf("%s[%d]", path, i), item, explain)
		}
	}
}

// printNearMisses shows kinds missing at most three required keys.
func printNearMisses(obj map[string]any) {
	for _, kind := range resource.ClassifierOrder() {
		required := resource.RequiredKeys(kind)
		if len(required) == 0 {
			continue
		}
		var missing []string
		for _, key := range required {
			if _, ok := obj[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 && len(missing) <= 3 {
			fmt.Printf("    ~ %s lacks %s\n", kind, strings.Join(missing, ", "))
		}
	}
}

// clone copies v so classifying it leaves the walked tree untouched.
func clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = clone(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = clone(item)
		}
		return out
	default:
		return v
	}
}

func joinKinds(kinds []resource.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, " > ")
}
