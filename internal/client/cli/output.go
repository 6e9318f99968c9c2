package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	pb "github.com/Camilo-Usuga/xxi-storage/internal/proto"
)

func visibility(public bool) string {
	if public {
		return "public"
	}
	return "private"
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printOwned(w io.Writer, files []*pb.File) error {
	if len(files) == 0 {
		_, err := fmt.Fprintln(w, "No files")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tKIND\tVISIBILITY\tSHARED")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			f.GetId(), f.GetName(), f.GetHumanSize(), f.GetKind(), visibility(f.GetIsPublic()), len(f.GetSharedWith()))
	}
	return tw.Flush()
}

func printShared(w io.Writer, files []*pb.File) error {
	if len(files) == 0 {
		_, err := fmt.Fprintln(w, "Nothing shared with you")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tKIND\tOWNER")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", f.GetId(), f.GetName(), f.GetHumanSize(), f.GetKind(), f.GetOwnerId())
	}
	return tw.Flush()
}
