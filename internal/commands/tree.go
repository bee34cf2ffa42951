// Package commands contains the core logic for data collection for each command.
package commands

import (
	"fmt"
	"os"

	"github.com/temirov/foldertree/internal/types"
)

const (
	// errorReadDirectoryFormat is reported when a directory cannot be opened or listed.
	errorReadDirectoryFormat = "Error reading directory: %s"
	// debugReadDirectoryCauseFormat carries the underlying error at debug level.
	debugReadDirectoryCauseFormat = "reading directory %s: %v"
	// debugStatEntryFormat is used when an entry cannot be classified.
	debugStatEntryFormat = "Skipping %s: unable to stat: %v"
	// debugCloseDirectoryFormat is used when a directory handle fails to close.
	debugCloseDirectoryFormat = "closing directory %s: %v"
)

// folderSlot accumulates one directory's listing until the whole tree is read.
// children holds arena indices of subfolders in enumeration order.
type folderSlot struct {
	name     string
	files    []string
	children []int
}

// pendingDirectory is a directory waiting to be listed and the slot it fills.
type pendingDirectory struct {
	path string
	slot int
}

// treeTraversal owns the arena for a single BuildFolder call.
type treeTraversal struct {
	treeBuilder *TreeBuilder
	slots       []folderSlot
}

// BuildFolder walks rootPath and returns its folder tree.
// A path that is missing or is not a directory yields a childless folder named after
// its base name. Unreadable directories are reported and contribute whatever entries
// were listed before the failure.
func (treeBuilder *TreeBuilder) BuildFolder(rootPath string) types.Folder {
	rootName := folderName(rootPath)
	rootInfo, rootStatError := os.Stat(rootPath)
	if rootStatError != nil || !rootInfo.IsDir() {
		return types.Folder{Name: rootName}
	}

	traversal := &treeTraversal{
		treeBuilder: treeBuilder,
		slots:       []folderSlot{{name: rootName}},
	}
	workStack := []pendingDirectory{{path: rootPath, slot: 0}}
	for len(workStack) > 0 {
		currentDirectory := workStack[len(workStack)-1]
		workStack = workStack[:len(workStack)-1]

		childDirectories := traversal.listDirectory(currentDirectory)
		// reversed so the first enumerated child is listed next
		for childIndex := len(childDirectories) - 1; childIndex >= 0; childIndex-- {
			workStack = append(workStack, childDirectories[childIndex])
		}
	}

	return traversal.assemble()
}

// listDirectory records the files of directory and allocates slots for its
// non-ignored subdirectories, which are returned for later listing.
func (traversal *treeTraversal) listDirectory(directory pendingDirectory) []pendingDirectory {
	logger := traversal.treeBuilder.diagnostics()

	directoryHandle, openError := os.Open(directory.path)
	if openError != nil {
		traversal.reportUnreadable(directory.path, openError)
		return nil
	}
	directoryEntries, readError := directoryHandle.ReadDir(-1)
	if closeError := directoryHandle.Close(); closeError != nil {
		logger.Debug(fmt.Sprintf(debugCloseDirectoryFormat, directory.path, closeError))
	}
	if readError != nil {
		traversal.reportUnreadable(directory.path, readError)
	}

	var childDirectories []pendingDirectory
	for _, directoryEntry := range directoryEntries {
		entryPath := joinEntryPath(directory.path, directoryEntry.Name())
		entryInfo, statError := os.Stat(entryPath)
		if statError != nil {
			logger.Debug(fmt.Sprintf(debugStatEntryFormat, entryPath, statError))
			continue
		}
		entryName := sanitizeName(directoryEntry.Name())

		switch {
		case entryInfo.IsDir():
			if traversal.treeBuilder.IgnoredNames.Contains(entryName) {
				continue
			}
			childSlot := len(traversal.slots)
			traversal.slots = append(traversal.slots, folderSlot{name: entryName})
			traversal.slots[directory.slot].children = append(traversal.slots[directory.slot].children, childSlot)
			childDirectories = append(childDirectories, pendingDirectory{path: entryPath, slot: childSlot})
		case entryInfo.Mode().IsRegular():
			traversal.slots[directory.slot].files = append(traversal.slots[directory.slot].files, entryName)
		}
	}
	return childDirectories
}

func (traversal *treeTraversal) reportUnreadable(directoryPath string, cause error) {
	logger := traversal.treeBuilder.diagnostics()
	logger.Error(fmt.Sprintf(errorReadDirectoryFormat, directoryPath))
	logger.Debug(fmt.Sprintf(debugReadDirectoryCauseFormat, directoryPath, cause))
}

// assemble converts the arena into nested folders. Children are always allocated
// after their parent, so walking the arena backwards completes every child first.
func (traversal *treeTraversal) assemble() types.Folder {
	folders := make([]types.Folder, len(traversal.slots))
	for slotIndex := len(traversal.slots) - 1; slotIndex >= 0; slotIndex-- {
		slot := traversal.slots[slotIndex]
		folder := types.Folder{
			Name:  slot.name,
			Files: slot.files,
		}
		if len(slot.children) > 0 {
			folder.Subfolders = make([]types.Folder, 0, len(slot.children))
			for _, childSlot := range slot.children {
				folder.Subfolders = append(folder.Subfolders, folders[childSlot])
			}
		}
		folders[slotIndex] = folder
	}
	return folders[0]
}
