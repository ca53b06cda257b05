// Package proposal is the composition root of the proposal generator.
//
// It wires a dataset source (a local CSV file or an HTTP URL) into a
// core.Service and exposes the document assembler, so a program can go from
// a tool catalogue to a ready-to-paste plain-text proposal in a few calls.
//
// The dataset is a delimited text file whose first line names the columns.
// Chinese and English headers are both accepted (工具ID or id, 工具名稱 or
// name, and so on); rows without an ID or a name are ignored.
//
// Usage:
//
//	svc, err := proposal.New(proposal.WithDataset("data/tools.csv"))
//	if err != nil {
//		return err
//	}
//	if _, err := svc.Reload(ctx); err != nil {
//		return err
//	}
//
//	st := svc.Session().WithType(core.Course).Toggle("A01", true)
//	fmt.Println(proposal.Generate(st))
package proposal
