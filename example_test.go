package proposal_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/proposal"
	"github.com/aretw0/proposal/pkg/core"
)

// Example_basic loads a dataset file and generates a course proposal.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "proposal-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "tools.csv")
	data := "工具ID,工具名稱,核心功能\nA01,呼吸急救,三分鐘降溫\nA02,換句話說,\n,沒有編號的列,\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		log.Fatal(err)
	}

	svc, err := proposal.New(proposal.WithDataset(path))
	if err != nil {
		log.Fatal(err)
	}

	st, err := svc.Reload(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(st.Message())

	session := svc.Session().
		WithType(core.Course).
		WithFields(core.Fields{Audience: "家長"}).
		Toggle("A01", true)

	doc := proposal.Generate(session)
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "【提案類型】") || strings.HasPrefix(line, "【主工具】") {
			fmt.Println(line)
		}
	}
	// Output:
	// ✅ 已載入 2 筆工具
	// 【提案類型】課程
	// 【主工具】呼吸急救（A01）
}
