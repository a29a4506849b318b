package locale

import (
	"fmt"
	"time"
)

// ZH is the Simplified Chinese table.
var ZH = register(&Locale{
	Code:        "zh",
	weekdays:    [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
	WeekHeader:  "日 一 二 三 四 五 六",
	ScoreLabel:  "评分：",
	TextLabel:   "文字：",
	FilePrefix:  "心情记录",
	PrintTitle:  "心情日记",
	PrintButton: "打印 / 保存为 PDF",
	Remaining:   "还可输入 %d 字",
	Saved:       "已保存",
	Imported:    "导入成功！",
	ReadOnly:    "只能编辑今天的记录哦",
	UI: UILabels{
		Hints:             "1-9/0 评分, i 文字, a 图片, s 保存, ←/→ 切换日期, [/] 切换月份, e 导出, I 导入, ? 帮助",
		Cancelled:         "已取消",
		Staged:            "已选择 %d/%d 张图片",
		Images:            "图片 %d/%d",
		Exported:          "已导出 %d 天的记录到 %s",
		UnknownExport:     "不支持的导出格式：%s",
		ImportSummary:     "合并 %d 天，跳过 %d 条",
		PromptText:        "文字 ",
		PromptImages:      "图片 ",
		PromptExport:      "导出 ",
		PromptImport:      "导入 ",
		PlaceholderText:   "今天心情怎么样？",
		PlaceholderImages: "图片文件路径，用空格分隔",
		PlaceholderExport: "text|print|json [day|week|month|year]",
		PlaceholderImport: "JSON 备份文件路径",
	},
	ranges: map[string]string{
		"day":   "一天",
		"week":  "一周",
		"month": "一个月",
		"year":  "一年",
	},
	monthTitle: func(year int, month time.Month) string {
		return fmt.Sprintf("%d年%d月", year, int(month))
	},
})

// EN is the English table.
var EN = register(&Locale{
	Code:        "en",
	weekdays:    [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekHeader:  "Su Mo Tu We Th Fr Sa",
	ScoreLabel:  "Score: ",
	TextLabel:   "Text:",
	FilePrefix:  "mood-diary",
	PrintTitle:  "Mood Diary",
	PrintButton: "Print / Save as PDF",
	Remaining:   "%d characters left",
	Saved:       "Saved",
	Imported:    "Import complete.",
	ReadOnly:    "Read-only: only today can be edited.",
	UI: UILabels{
		Hints:             "1-9/0 score, i text, a images, s save, ←/→ days, [/] months, e export, I import, ? help",
		Cancelled:         "Cancelled",
		Staged:            "%d/%d images staged",
		Images:            "images %d/%d",
		Exported:          "Exported %d days to %s",
		UnknownExport:     "Unknown export: %s",
		ImportSummary:     "%d merged, %d skipped",
		PromptText:        "Text ",
		PromptImages:      "Images ",
		PromptExport:      "Export ",
		PromptImport:      "Import ",
		PlaceholderText:   "how was today?",
		PlaceholderImages: "image files, separated by spaces",
		PlaceholderExport: "text|print|json [day|week|month|year]",
		PlaceholderImport: "path of a JSON backup",
	},
	ranges: map[string]string{
		"day":   "day",
		"week":  "week",
		"month": "month",
		"year":  "year",
	},
	monthTitle: func(year int, month time.Month) string {
		return fmt.Sprintf("%s %d", month, year)
	},
})
