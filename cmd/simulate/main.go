package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"chargesim"
	"chargesim/config"
	"chargesim/debug"
)

var (
	configPath = flag.String("config", "", "YAML 配置文件，为空时使用默认电路")
	steps      = flag.Int("steps", 0, "仿真步数")
	lines      = flag.Int("lines", 0, "输出行数")
	dt         = flag.Float64("dt", 0, "时间步长")
	voltage    = flag.Float64("voltage", 0, "电源电压")
	recordPath = flag.String("record", "", "保存运行记录 (JSON)")
	htmlPath   = flag.String("html", "", "保存曲线页面 (HTML)")
	pngPath    = flag.String("png", "", "保存电压曲线图片，格式由扩展名决定")
	every      = flag.Int("every", 0, "每隔多少步记录一次，0 表示自动")
	check      = flag.Bool("check", false, "与直流稳态解比较")
	tolerance  = flag.Float64("tol", 0.01, "稳态比较允许的误差，相对于电源电压")
	dump       = flag.Bool("dump", false, "输出配置后退出")
)

func main() {
	flag.Parse()
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("配置错误: %v", err)
	}
	if *dump {
		out, err := cfg.Marshal()
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(out)
		return
	}
	failed := 0
	for i := range cfg.Circuits {
		if err := run(cfg, i); err != nil {
			log.Printf("电路 %s 仿真失败: %v", cfg.Circuits[i].Name, err)
			failed++
		}
		fmt.Println()
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// loadConfig 读取配置，命令行参数覆盖配置文件
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadUnchecked(*configPath); err != nil {
			return nil, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "steps":
			cfg.Steps = *steps
		case "lines":
			cfg.Lines = *lines
		case "dt":
			cfg.TimeStep = *dt
		case "voltage":
			cfg.Voltage = *voltage
		}
	})
	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}

func run(cfg *config.Config, i int) error {
	cc := cfg.Circuits[i]
	cir, err := cfg.Build(i)
	if err != nil {
		return err
	}
	defer cir.Close()

	var record *debug.Record
	if *recordPath != "" || *htmlPath != "" || *pngPath != "" {
		n := *every
		if n <= 0 {
			n = max(cfg.Steps/1000, 1)
		}
		record = debug.NewRecord(n)
		cir.SetDebug(record)
	}

	fmt.Printf("%s: %d 步, 步长 %g, 电压 %g\n", cc.Name, cfg.Steps, cfg.TimeStep, cfg.Voltage)
	err = cir.Simulate(cfg.Steps, cfg.Lines, os.Stdout)
	if record != nil {
		// 失败时也保存已经记录的数据
		if serr := save(record, cc.Name, len(cfg.Circuits) > 1); serr != nil {
			log.Printf("电路 %s 保存失败: %v", cc.Name, serr)
		}
	}
	if err != nil {
		return err
	}
	if *check {
		return compare(cir, cfg.Voltage)
	}
	return nil
}

// compare 比较步进结果和直流稳态解
func compare(cir *chargesim.Circuit, voltage float64) error {
	sol, err := cir.SteadyState()
	if err != nil {
		return err
	}
	limit := *tolerance * voltage
	var bad []string
	fmt.Printf("%12s%10s%10s%10s%10s\n", "", "Volt", "Steady", "Curr", "Steady")
	for _, ele := range cir.List() {
		v, i := sol.ElementVoltage(ele), sol.ElementCurrent(ele)
		fmt.Printf("%12s%10.4f%10.4f%10.4f%10.4f\n", ele.GetName(), ele.GetVoltage(), v, ele.GetCurrent(), i)
		if math.Abs(ele.GetVoltage()-v) > limit {
			bad = append(bad, ele.GetName())
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("未收敛到稳态: %s", strings.Join(bad, ", "))
	}
	return nil
}

func save(record *debug.Record, name string, many bool) error {
	if *recordPath != "" {
		if err := writeFile(outPath(*recordPath, name, many), record.Render); err != nil {
			return err
		}
	}
	if *htmlPath != "" {
		c := &debug.Charts{Record: record}
		if err := writeFile(outPath(*htmlPath, name, many), c.Render); err != nil {
			return err
		}
	}
	if *pngPath != "" {
		if err := debug.NewPlot(record).Save(debug.QuantityVoltage, outPath(*pngPath, name, many)); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, render func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// outPath 多个电路时在扩展名前加上电路名称
func outPath(path, name string, many bool) string {
	if !many {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + name + ext
}
