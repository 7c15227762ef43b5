package kv

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/hKV/cmd/util"
	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/rpc/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for hKV servers",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfTable            = "__perf"
	perfLargeValueSizeKB = 100
	perfNumThreads       = 10
	perfKeySpread        = 100
	perfBatchSize        = 10
	perfSkip             = make([]string, 0)
)

// perfTest is a single benchmark. setup fills the keys the test reads, run performs one
// operation for the given iteration.
type perfTest struct {
	name  string
	setup bool
	run   func(keys *testKeys, i int) error
}

func init() {
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. hset,hget)"))
	key = "threads"
	perfTestCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark"))
	key = "large-value-size"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How large the value for the hset-large test should be (in KB)"))
	key = "keys"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
	key = "batch-size"
	perfTestCmd.Flags().Int(key, 10, util.WrapString("How many keys a single batch command (hmget, hmset) uses"))
	key = "csv"
	perfTestCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	perfLargeValueSizeKB = viper.GetInt("large-value-size")
	perfKeySpread = max(1, viper.GetInt("keys"))
	perfNumThreads = max(1, viper.GetInt("threads"))
	perfBatchSize = max(1, viper.GetInt("batch-size"))
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func perfTests() []perfTest {
	largeValue := kv.Binary(make([]byte, perfLargeValueSizeKB*1024))
	small := kv.String("test")

	return []perfTest{
		{name: "hset", run: func(k *testKeys, i int) error {
			_, err := rpcClient.Hset(perfTable, k.key(i), small)
			return err
		}},
		{name: "hset-large", run: func(k *testKeys, i int) error {
			_, err := rpcClient.Hset(perfTable, k.key(i), largeValue)
			return err
		}},
		{name: "hget", setup: true, run: func(k *testKeys, i int) error {
			_, err := rpcClient.Hget(perfTable, k.key(i))
			return err
		}},
		{name: "hexists", setup: true, run: func(k *testKeys, i int) error {
			_, err := rpcClient.Hexists(perfTable, k.key(i))
			return err
		}},
		{name: "hexists-not", run: func(k *testKeys, i int) error {
			_, err := rpcClient.Hexists(perfTable, k.key(i)+"-missing")
			return err
		}},
		{name: "hdel", setup: true, run: func(k *testKeys, i int) error {
			_, err := rpcClient.Hdel(perfTable, k.key(i))
			return err
		}},
		{name: "hmget", setup: true, run: func(k *testKeys, i int) error {
			_, err := rpcClient.Hmget(perfTable, k.batch(i))
			return err
		}},
		{name: "hmset", run: func(k *testKeys, i int) error {
			keys := k.batch(i)
			pairs := make([]kv.Pair, len(keys))
			for j, key := range keys {
				pairs[j] = kv.NewPair(key, small)
			}
			_, err := rpcClient.Hmset(perfTable, pairs)
			return err
		}},
		{name: "hgetall", setup: true, run: func(k *testKeys, i int) error {
			_, err := rpcClient.Hgetall(k.table)
			return err
		}},
		{name: "mixed", setup: true, run: func(k *testKeys, i int) error {
			var err error
			key := k.key(i)
			switch i % 4 {
			case 0:
				_, err = rpcClient.Hset(perfTable, key, small)
			case 1:
				_, err = rpcClient.Hget(perfTable, key)
			case 2:
				_, err = rpcClient.Hdel(perfTable, key)
			case 3:
				_, err = rpcClient.Hexists(perfTable, key)
			}
			return err
		}},
	}
}

func runPerf(_ *cobra.Command, _ []string) error {
	fmt.Println("Performance testing tool for hKV servers")

	// Print configuration
	config := util.GetClientConfig()
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(config.String())
	fmt.Printf("Threads: %d\n", perfNumThreads)
	fmt.Println()

	fmt.Println("starting tests...")

	results := make(map[string]testing.BenchmarkResult)
	for _, test := range perfTests() {
		result := testing.Benchmark(func(b *testing.B) {
			if shouldSkip(test.name) {
				return
			}
			runPerfTest(b, test)
		})
		results[test.name] = result
		printResult(test.name, result)
	}

	// Write results to csv is specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

func runPerfTest(b *testing.B, test perfTest) {
	keys := newTestKeys(test.name, perfKeySpread)

	if test.setup {
		if _, err := rpcClient.Hmset(perfTable, keys.pairs(kv.String("test"))); err != nil {
			log.Printf("(%s) - error setting keys: %v\n", test.name, err)
		}
	}

	// cleanup
	b.Cleanup(func() {
		if _, err := rpcClient.Hmdel(perfTable, keys.keys); err != nil {
			log.Printf("(%s) - error deleting keys: %v\n", test.name, err)
		}
	})

	b.SetParallelism(perfNumThreads)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			// not found is expected for some tests (e.g. hget after hdel in mixed)
			if err := test.run(keys, counter); err != nil && !client.IsNotFound(err) {
				log.Printf("(%s) - error: %v\n", test.name, err)
			}
			counter++
		}
	})
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	return slices.Contains(perfSkip, test)
}

// testKeys is a fixed set of keys a test cycles through
type testKeys struct {
	table string
	keys  []string
}

func newTestKeys(prefix string, n int) *testKeys {
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return &testKeys{table: perfTable, keys: keys}
}

// key returns a key by index (with wraparound)
func (k *testKeys) key(i int) string {
	return k.keys[i%len(k.keys)]
}

// batch returns perfBatchSize consecutive keys starting at index i (with wraparound)
func (k *testKeys) batch(i int) []string {
	batch := make([]string, perfBatchSize)
	for j := range batch {
		batch[j] = k.key(i + j)
	}
	return batch
}

func (k *testKeys) pairs(v kv.Value) []kv.Pair {
	pairs := make([]kv.Pair, len(k.keys))
	for i, key := range k.keys {
		pairs[i] = kv.NewPair(key, v)
	}
	return pairs
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, result testing.BenchmarkResult) {
	if result.NsPerOp() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	nsPerOp := math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	fmt.Printf("%-20s%.0fns/op (%s/op)\t%.0f ops/sec\n", test, nsPerOp, time.Duration(nsPerOp), opsPerSec)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results map[string]testing.BenchmarkResult) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	config := util.GetClientConfig()

	header := []string{
		"Test", "NsPerOp", "DurationPerOp", "OpsPerSec", "Skipped",
		"Endpoints", "TimeoutSec", "RetryCount", "ConnectionsPerEndpoint",
		"Serializer", "Transport",
		"Threads", "LargeValueSizeKB", "Keys Count", "Batch Size",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, test := range names {
		result := results[test]
		var nsPerOp, opsPerSec float64
		skipped := "true"

		if result.NsPerOp() != 0 {
			skipped = "false"
			nsPerOp = math.Max(float64(result.NsPerOp()), 1)
			opsPerSec = 1.0 / (nsPerOp / 1e9)
		}

		row := []string{
			test,
			fmt.Sprintf("%.0f", nsPerOp),
			time.Duration(nsPerOp).String(),
			fmt.Sprintf("%.0f", opsPerSec),
			skipped,
			strings.Join(config.Endpoints, ";"),
			strconv.Itoa(config.TimeoutSecond),
			strconv.Itoa(config.RetryCount),
			strconv.Itoa(config.ConnectionsPerEndpoint),
			viper.GetString("serializer"),
			viper.GetString("transport"),
			strconv.Itoa(perfNumThreads),
			strconv.Itoa(perfLargeValueSizeKB),
			strconv.Itoa(perfKeySpread),
			strconv.Itoa(perfBatchSize),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for test %s: %v", test, err)
		}
	}

	return nil
}
