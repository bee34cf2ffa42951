// Package output renders folder trees as text.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/temirov/foldertree/internal/types"
)

const treeLineFormat = "%s%s%s\n"

// treeLineConnector selects the corner connector for the last sibling.
func treeLineConnector(isLast bool) string {
	if isLast {
		return types.TreeLastConnector
	}
	return types.TreeBranchConnector
}

func writeTreeLine(writer io.Writer, indent int, isLast bool, name string) {
	fmt.Fprintf(writer, treeLineFormat, strings.Repeat(" ", indent), treeLineConnector(isLast), name)
}

// WriteFolderTree renders folder at indent columns: the folder line first, then its
// files, then each subfolder, all two columns deeper. Files and subfolders are
// separate sibling lists: the last file and the last subfolder each get the corner
// connector. Ancestors get no continuation bars.
func WriteFolderTree(writer io.Writer, folder types.Folder, indent int, isLast bool) {
	if indent < 0 {
		indent = 0
	}
	writeTreeLine(writer, indent, isLast, folder.Name)

	childIndent := indent + types.TreeIndentStep
	for fileIndex, fileName := range folder.Files {
		writeTreeLine(writer, childIndent, fileIndex == len(folder.Files)-1, fileName)
	}
	for subfolderIndex, subfolder := range folder.Subfolders {
		WriteFolderTree(writer, subfolder, childIndent, subfolderIndex == len(folder.Subfolders)-1)
	}
}

// RenderFolderTree returns the rendering of folder as the root of a tree.
func RenderFolderTree(folder types.Folder) string {
	var builder strings.Builder
	WriteFolderTree(&builder, folder, 0, true)
	return builder.String()
}

// PrintFolderTree renders folder as the root of a tree to standard output.
func PrintFolderTree(folder types.Folder) {
	WriteFolderTree(os.Stdout, folder, 0, true)
}
