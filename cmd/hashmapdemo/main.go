package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/gostonefire/primehashmap"
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/internal/logutil"
	"github.com/gostonefire/primehashmap/mode"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("cfg", "", "toml configuration of the demo, built-in defaults are used if not given")
	dump       = flag.Bool("dump", false, "print every bucket of the hash map when done")
)

func main() {
	flag.Parse()

	cfg, err := parseConfigFromFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config from %s, error: %s\n", *configFile, err.Error())
		os.Exit(2)
	}

	logger, err := logutil.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logger, error: %s\n", err.Error())
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(cfg, logger); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *Config, logger *zap.Logger) error {
	crtType, _ := cfg.crtType()
	hm, err := primehashmap.NewHashMap(crtType, cfg.Table.Capacity, cfg.hashFunc(), primehashmap.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Printf("%s hash map, hash function %s, capacity %d\n", crt.Name(crtType), cfg.Table.HashFunction, hm.Capacity())

	fmt.Println("\nput")
	fmt.Println("---")
	for i := 0; i < 150; i++ {
		if err = hm.Put("str"+strconv.Itoa(i), i*100); err != nil {
			return err
		}
		if i%25 == 24 {
			fmt.Println(hm.EmptyBuckets(), round(hm.TableLoad()), hm.Size(), hm.Capacity())
		}
	}

	fmt.Println("\nremove")
	fmt.Println("------")
	for i := 0; i < 150; i += 3 {
		hm.Remove("str" + strconv.Itoa(i))
	}
	fmt.Println(hm.EmptyBuckets(), round(hm.TableLoad()), hm.Size(), hm.Capacity())

	fmt.Println("\nresize")
	fmt.Println("------")
	before := hm.GetKeysAndValues()
	for capacity := int64(111); capacity < 1000; capacity += 117 {
		hm.Resize(capacity)
		fmt.Println(capacity, hm.Size(), hm.Capacity(), round(hm.TableLoad()), len(hm.GetKeysAndValues()) == len(before))
	}

	stat, err := hm.Stat(false)
	if err != nil {
		return err
	}
	fmt.Println("\nstat")
	fmt.Println("----")
	fmt.Printf("records %d, capacity %d, empty buckets %d, tombstones %d, load %.2f, max bucket records %d\n",
		stat.Records, stat.Capacity, stat.EmptyBuckets, stat.Tombstones, stat.LoadFactor, stat.MaxBucketRecords)

	if *dump {
		fmt.Println()
		fmt.Print(hm.String())
	}

	fmt.Println("\nmode")
	fmt.Println("----")
	modes, frequency, err := mode.Find(cfg.Mode.Values, primehashmap.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Printf("input: %v\nmode: %v, frequency: %d\n", cfg.Mode.Values, modes, frequency)

	return nil
}

func round(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
