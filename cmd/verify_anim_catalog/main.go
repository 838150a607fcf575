// verify_anim_catalog - 变换动画目录验证程序
// 无窗口运行目录中的每个动画（战斗/图鉴 × 镜像/不镜像），
// 报告结束所需帧数以及结束后没有回到中性状态的情况，
// 并检查物种动画表引用的动画都能解析
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/monanim/internal/animtrace"
	"github.com/decker502/monanim/pkg/config"
	"github.com/decker502/monanim/pkg/embedded"
	"github.com/decker502/monanim/pkg/monanim"
)

var (
	rootDir    = flag.String("root", ".", "包含 data/ 目录的项目根目录")
	frameAnim  = flag.Int("frame-anim", 0, "模拟帧动画长度（帧）")
	maxFrames  = flag.Int("max-frames", animtrace.DefaultMaxFrames, "判定不终止的帧数")
	reportPath = flag.String("report", "", "把逐个动画的结果写入 YAML 文件")
	verbose    = flag.Bool("verbose", false, "打印每个动画的结果")
)

// ========== 验证报告结构 ==========

type ValidationReport struct {
	TestName string
	Passed   bool
	Message  string
}

var validationReports []ValidationReport

func addReport(testName string, passed bool, message string) {
	validationReports = append(validationReports, ValidationReport{
		TestName: testName,
		Passed:   passed,
		Message:  message,
	})
	status := "✗ FAIL"
	if passed {
		status = "✓ PASS"
	}
	log.Printf("%s | %-30s | %s", status, testName, message)
}

// ========== YAML 报告结构 ==========

// AnimResult 一个动画在一种播放方式下的结果
type AnimResult struct {
	Mode          string   `yaml:"mode"`
	FinishFrame   int      `yaml:"finish_frame"`
	CompleteFrame int      `yaml:"complete_frame"`
	Violations    []string `yaml:"violations,omitempty"`
}

// AnimEntry 一个动画的全部结果
type AnimEntry struct {
	ID      int          `yaml:"id"`
	Name    string       `yaml:"name"`
	Unused  bool         `yaml:"unused,omitempty"`
	UsedBy  int          `yaml:"used_by"`
	Results []AnimResult `yaml:"results"`
}

// CatalogReport 目录验证报告
type CatalogReport struct {
	FrameAnim int         `yaml:"frame_anim"`
	Entries   []AnimEntry `yaml:"entries"`
}

type playMode struct {
	name string
	opts animtrace.Options
}

var playModes = []playMode{
	{"battle", animtrace.Options{}},
	{"battle_mirrored", animtrace.Options{Mirrored: true}},
	{"summary", animtrace.Options{Summary: true}},
	{"summary_mirrored", animtrace.Options{Summary: true, Mirrored: true}},
}

// ========== 验证函数 ==========

// verifyCatalog 运行每个动画并检查终止和复位
func verifyCatalog(usage map[monanim.AnimID]int) *CatalogReport {
	report := &CatalogReport{FrameAnim: *frameAnim}
	nonTerminating := 0
	resetFailures := 0
	longest := AnimEntry{}
	longestFrames := 0

	for _, info := range monanim.Catalog() {
		entry := AnimEntry{ID: int(info.ID), Name: info.Name, Unused: info.Unused, UsedBy: usage[info.ID]}
		for _, mode := range playModes {
			opts := mode.opts
			opts.FrameAnimFrames = *frameAnim
			opts.MaxFrames = *maxFrames

			t, err := animtrace.Record(info.ID, opts)
			if err != nil {
				entry.Results = append(entry.Results, AnimResult{Mode: mode.name, Violations: []string{err.Error()}})
				resetFailures++
				continue
			}
			result := AnimResult{
				Mode:          mode.name,
				FinishFrame:   t.FinishFrame,
				CompleteFrame: t.CompleteFrame,
				Violations:    t.Violations(),
			}
			if t.CompleteFrame < 0 {
				nonTerminating++
			} else if len(result.Violations) > 0 {
				resetFailures++
			}
			if t.CompleteFrame > longestFrames {
				longestFrames = t.CompleteFrame
				longest = entry
			}
			for _, v := range result.Violations {
				log.Printf("    %s [%s]: %s", info, mode.name, v)
			}
			entry.Results = append(entry.Results, result)
		}
		if *verbose {
			log.Printf("  %-40s %v", info, completeFrames(entry))
		}
		report.Entries = append(report.Entries, entry)
	}

	runs := len(report.Entries) * len(playModes)
	addReport("全部动画终止", nonTerminating == 0,
		fmt.Sprintf("%d/%d 次播放在 %d 帧内终止", runs-nonTerminating, runs, *maxFrames))
	addReport("结束后回到中性状态", resetFailures == 0,
		fmt.Sprintf("%d 次播放复位失败", resetFailures))
	addReport("最长动画", true, fmt.Sprintf("%s: %d 帧", longest.Name, longestFrames))
	return report
}

// verifyMirrorSymmetry 检查镜像播放时水平偏移取反、垂直偏移不变
func verifyMirrorSymmetry() {
	asymmetric := 0
	for _, info := range monanim.Catalog() {
		plain, err1 := animtrace.Record(info.ID, animtrace.Options{Summary: true})
		mirrored, err2 := animtrace.Record(info.ID, animtrace.Options{Summary: true, Mirrored: true})
		if err1 != nil || err2 != nil || len(plain.Samples) != len(mirrored.Samples) {
			asymmetric++
			log.Printf("    %s: 镜像播放帧数不同", info)
			continue
		}
		for i := range plain.Samples {
			p, m := plain.Samples[i], mirrored.Samples[i]
			if p.X != -m.X || p.Y != m.Y {
				asymmetric++
				log.Printf("    %s: 第 %d 帧偏移 (%d,%d) vs 镜像 (%d,%d)", info, i+1, p.X, p.Y, m.X, m.Y)
				break
			}
		}
	}
	addReport("镜像对称", asymmetric == 0, fmt.Sprintf("%d 个动画不对称", asymmetric))
}

// verifySpeciesTable 检查物种动画表
func verifySpeciesTable(species *config.MonAnimConfigManager) map[monanim.AnimID]int {
	usage := make(map[monanim.AnimID]int)
	unusedReferenced := 0
	all := species.Species()
	for _, sp := range all {
		usage[sp.Front]++
		info, err := monanim.Info(sp.Front)
		if err != nil {
			continue
		}
		if info.Unused {
			unusedReferenced++
			log.Printf("    %s 使用了标记为未使用的动画 %s", sp.Name, info.Name)
		}
	}
	addReport("物种动画表", len(all) > 0, fmt.Sprintf("%d 个物种", len(all)))
	addReport("未使用标记", unusedReferenced == 0, fmt.Sprintf("%d 个物种引用未使用的动画", unusedReferenced))

	badBack := 0
	for _, sp := range all {
		set, err := species.BackAnimSet(sp.ID)
		if err != nil {
			badBack++
			continue
		}
		variants, err := set.Variants()
		if err != nil {
			badBack++
			continue
		}
		for _, id := range variants {
			usage[id]++
		}
	}
	addReport("背视动画组", badBack == 0, fmt.Sprintf("%d 个物种的动画组无法解析", badBack))

	missing := 0
	for _, id := range monanim.PublicIDs() {
		if usage[id] == 0 {
			missing++
			if *verbose {
				log.Printf("    %s 没有物种引用", id)
			}
		}
	}
	addReport("公开动画被引用", true, fmt.Sprintf("%d 个公开动画没有物种引用", missing))
	return usage
}

func completeFrames(entry AnimEntry) []int {
	frames := make([]int, 0, len(entry.Results))
	for _, r := range entry.Results {
		frames = append(frames, r.CompleteFrame)
	}
	return frames
}

func writeReport(path string, report *CatalogReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	log.Println("========== 变换动画目录验证 ==========")

	embedded.Init(nil, os.DirFS(*rootDir))
	species, err := config.NewMonAnimConfigManager("data")
	if err != nil {
		log.Fatalf("加载物种动画表失败: %v", err)
	}

	log.Println("\n[物种动画表]")
	usage := verifySpeciesTable(species)

	log.Println("\n[目录播放]")
	report := verifyCatalog(usage)

	log.Println("\n[镜像]")
	verifyMirrorSymmetry()

	if *reportPath != "" {
		if err := writeReport(*reportPath, report); err != nil {
			log.Fatalf("写入报告失败: %v", err)
		}
		log.Printf("\n报告已写入 %s", *reportPath)
	}

	failed := 0
	for _, r := range validationReports {
		if !r.Passed {
			failed++
		}
	}
	log.Printf("\n========== %d 项检查, %d 项失败 ==========", len(validationReports), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
