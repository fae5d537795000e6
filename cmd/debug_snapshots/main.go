package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"cdn-manager/core/api"
	"cdn-manager/core/config"
	"cdn-manager/core/snapshot"
	"cdn-manager/core/storage"

	"github.com/spf13/pflag"
)

// Lists the snapshots archived for one origin and, with --live, compares the
// newest one against the origin as it is now.
func main() {
	configDir := pflag.String("config-dir", ".", "Directory holding .env and config.yaml")
	key := pflag.String("key", "", "Origin hostname the snapshots were keyed by")
	load := pflag.String("load", "", "Print one snapshot object by name")
	live := pflag.Bool("live", false, "Diff the newest snapshot against the live origin")
	pflag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}
	archive := snapshot.New(client, cfg.Storage.Bucket, cfg.Storage.Retain, nil)
	ctx := context.Background()

	if *load != "" {
		state, err := archive.Load(ctx, *load)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(state)
		return
	}

	if *key == "" {
		log.Fatal("--key or --load is required")
	}

	fmt.Printf("=== Snapshots under %s ===\n", snapshot.Prefix(cfg.API.Account, "origin", *key))
	entries, err := archive.List(ctx, cfg.API.Account, "origin", *key)
	if err != nil {
		log.Fatal(err)
	}
	for _, entry := range entries {
		fmt.Printf("%s  %6d  %s\n", entry.LastModified.Format("2006-01-02 15:04:05"), entry.Size, entry.Name)
	}
	fmt.Printf("Total: %d\n", len(entries))

	if !*live || len(entries) == 0 {
		return
	}

	fmt.Println("\n=== Drift since newest snapshot ===")
	state, err := archive.Load(ctx, entries[0].Name)
	if err != nil {
		log.Fatal(err)
	}
	rawID, ok := state["id"].(float64)
	if !ok {
		log.Fatalf("snapshot has no usable id: %v", state["id"])
	}
	id := int64(rawID)

	apiClient, err := api.NewClient(cfg.API)
	if err != nil {
		log.Fatal(err)
	}
	current, err := apiClient.GetOrigin(ctx, id)
	if err != nil {
		log.Fatal(err)
	}
	if current == nil {
		fmt.Printf("Origin %d no longer exists\n", id)
		return
	}

	for _, k := range []string{"id", "createdDate", "updatedDate"} {
		delete(state, k)
	}
	drift := current.Diff(state)
	if len(drift) == 0 {
		fmt.Println("No drift")
		return
	}
	fmt.Println("Snapshot values differing from the live origin:")
	printJSON(drift)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatal(err)
	}
}
