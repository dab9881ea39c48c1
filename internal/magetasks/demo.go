package magetasks

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// demoRuns is the regression generated by Demo: test name → number of seeds.
var demoRuns = map[string]int{
	"alu_smoke":      4,
	"alu_overflow":   2,
	"dma_burst_rand": 3,
	"uart_loopback":  1,
}

// WriteDemoRegression lays out designs/demo/results under dir with one
// sim_<seed> directory per run, plus one directory without a record and one
// whose record has no test name. It returns the results path.
func WriteDemoRegression(dir string, runs map[string]int) (string, error) {
	root := filepath.Join(dir, "designs", "demo", "results")

	names := make([]string, 0, len(runs))
	for name := range runs {
		names = append(names, name)
	}
	sort.Strings(names)

	seed := 1000
	write := func(record string) error {
		simDir := filepath.Join(root, fmt.Sprintf("sim_%d", seed))
		seed++
		if err := os.MkdirAll(simDir, 0o755); err != nil {
			return err
		}
		if record == "" {
			return nil
		}
		return os.WriteFile(filepath.Join(simDir, "test_cmd"), []byte(record), 0o644)
	}

	for _, name := range names {
		for i := 0; i < runs[name]; i++ {
			rec := fmt.Sprintf("xrun -sv tb_top.sv TEST_NAME=%s +SEED=%d\n", name, seed)
			if err := write(rec); err != nil {
				return "", err
			}
		}
	}
	if err := write(""); err != nil {
		return "", err
	}
	if err := write("xrun -sv tb_top.sv +SEED=0\n"); err != nil {
		return "", err
	}
	return root, nil
}

// Demo builds testseq and runs it against a generated regression.
func Demo() error {
	if err := BuildAll(); err != nil {
		return err
	}
	PrintH2Header("Demo")

	dir, err := os.MkdirTemp("", "testseq-demo-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	root, err := WriteDemoRegression(dir, demoRuns)
	if err != nil {
		return fmt.Errorf("writing demo regression: %w", err)
	}
	if err := Run("testseq", BinPath, "--path", root); err != nil {
		return err
	}

	report, err := os.ReadFile(filepath.Join(root, "demo_test_sequence_list.txt"))
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(string(report))
	return nil
}
