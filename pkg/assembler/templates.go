package assembler

import (
	"strings"

	"github.com/aretw0/proposal/pkg/core"
)

// Section headers, in document order.
const (
	headTitle     = "【提案名稱】"
	headType      = "【提案類型】"
	headAudience  = "【對象】"
	headPains     = "【主要痛點/關鍵字】"
	headTools     = "【採用工具】"
	headPrimary   = "【主工具】"
	headSecondary = "【副工具】"
	headGoals     = "【目標】"
	headFlow      = "【流程架構】"
	headDeliver   = "【交付物/帶走】"
	headRationale = "【為什麼有效（腦科學＋幸福教養核心）】"
	headClosing   = "【結尾一句話】"
)

const (
	noAudience      = "—"
	noToolSelected  = "（尚未選工具：建議至少選 1 個主工具）"
	defaultAudience = "參與者"
	defaultTool     = "主工具"
	listSep         = "、"
)

func defaultTitle(t core.DocType, audience string) string {
	a := "給你的一份"
	if audience != "" {
		a = "給" + audience + "的"
	}
	switch t {
	case core.Course:
		return a + "｜幸福教養實作課：把心站穩，方法就會來"
	case core.Activity:
		return a + "｜幸福教養體驗活動：從情緒急救到關係修復"
	default:
		return a + "｜大人先穩定，孩子才有路走"
	}
}

func goals(t core.DocType, audience, pains string) []string {
	who := audience
	if who == "" {
		who = defaultAudience
	}
	focus := ""
	if pains != "" {
		focus = "（聚焦：" + pains + "）"
	}

	switch t {
	case core.Course:
		return []string{
			"建立可持續的練習節律：每週一個小步驟，累積穩定感",
			"把「反應」轉成「選擇」：讓理性空間回來，溝通才有效",
			"讓家長/老師能帶走可用工具與語句模板，回到現場用得出來" + focus,
		}
	case core.Activity:
		return []string{
			"用體驗替代說教：在活動中完成「情緒降溫 → 連結修復」",
			"讓" + who + "現場學會一套「先穩定，再處理」的順序",
			"把衝突變成教育契機：用工具留下幸福的回家路" + focus,
		}
	default:
		return []string{
			"讓" + who + "理解：情緒失控不是壞，而是大腦警報（杏仁核模式）",
			"提供可立即操作的「穩定工具」與一句說得出口的話，降低衝突成本",
			"把教養從「硬撐」帶回「有方法的溫柔」" + focus,
		}
	}
}

func flow(t core.DocType, primary *core.Record, secondary []core.Record) []string {
	mt := defaultTool
	if primary != nil {
		mt = primary.Name
	}
	with := ""
	if len(secondary) > 0 {
		names := make([]string, len(secondary))
		for i, r := range secondary {
			names[i] = r.Name
		}
		with = "（搭配：" + strings.Join(names, listSep) + "）"
	}

	switch t {
	case core.Course:
		return []string{
			"第1段｜先穩定：用「" + mt + "」建立每天 3 分鐘的穩定練習" + with,
			"第2段｜看懂大腦：杏仁核警報與前額葉空間，找出自己的引爆點",
			"第3段｜換句話說：把指責改成描述，練習一句說得出口的話",
			"第4段｜回到現場：帶著工具回家實作，下一次課堂分享與修正",
		}
	case core.Activity:
		return []string{
			"破冰共感：用一個小遊戲說出最近最累的時刻",
			"情緒急救站：用「" + mt + "」完成一次降溫體驗" + with,
			"關係修復練習：兩兩一組，演練「先穩定，再處理」",
			"分享回饋：說出一個現場的發現與一個想帶回家的做法",
			"收尾儀式：帶走一句話＋一個工具連結（回家就能用）",
		}
	default:
		return []string{
			"暖身共感：把大家的累說清楚（不是你不會，是你撐太久）",
			"腦科學理解：杏仁核警報 → 前額葉需要空間",
			"工具示範：用「" + mt + "」做一次全場體驗" + with,
			"收尾整合：帶走一句話＋一個工具連結（回家就能用）",
		}
	}
}

func deliverables(t core.DocType) []string {
	switch t {
	case core.Course:
		return []string{
			"每週練習單與進度紀錄表",
			"常用情境語句模板（家長/老師版）",
			"完整工具包連結與課後複習影片",
		}
	case core.Activity:
		return []string{
			"現場完成的個人穩定小卡",
			"親子/師生可以一起玩的修復練習一份",
			"工具連結與活動回顧紀錄",
		}
	default:
		return []string{
			"一張「情緒警報 → 穩定 → 連結」三步驟圖卡",
			"一句回家就說得出口的穩定語句",
			"工具連結與影片清單（會後提供）",
		}
	}
}

var rationale = []string{
	"大腦在警報狀態下聽不進道理：先降溫，前額葉才有空間思考",
	"穩定是可以練習的能力：小步驟重複，新的反應迴路就會長出來",
	"幸福教養的核心是關係：先連結，再引導，孩子才願意靠近",
}

const closing = "大人先穩定，孩子才有路走；今天帶走的一個工具，就是回家的第一步。"
