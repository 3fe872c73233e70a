package pdffer

import "strings"

// GroupSeparator joins group and name into a template path. The pair of
// GS control bytes around the slash keeps any printable character legal in
// both group and name. Compose and de-compose paths only with EncodePath
// and DecodePath.
const GroupSeparator = "/"

// RootGroup is the group value for templates registered without a group.
const RootGroup = ""

// EncodePath makes a template path from group and name. A RootGroup group
// yields the name unchanged. No validation is performed on either part;
// the mapping is injective as long as neither part contains GroupSeparator.
func EncodePath(group, name string) string {
	if group == RootGroup {
		return name
	}
	return group + GroupSeparator + name
}

// DecodePath splits a template path into group and name at the first
// occurrence of GroupSeparator. A path without the separator belongs to
// RootGroup. Never fails.
func DecodePath(path string) (group, name string) {
	idx := strings.Index(path, GroupSeparator)
	if idx < 0 {
		return RootGroup, path
	}
	return path[:idx], path[idx+len(GroupSeparator):]
}
