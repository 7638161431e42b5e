// Package mapping provides the package map: the user-extensible table that
// says how a ROS dependency key translates into conda packages.
//
// # Document format
//
// A mapping document is a YAML (or JSON) object keyed by ROS dependency name:
//
//	# same-family aliases: resolved to ros-<distro>-<name>
//	ros_package: [ros_custom, ros_custom_msgs]
//	other_ros_package:
//	  ros: [other_custom]
//	# plain conda packages
//	zlib:
//	  conda: [zlib]
//	# robostack-selected packages, optionally per platform
//	opengl:
//	  robostack:
//	    linux: [REQUIRE_OPENGL]
//	    osx: [REQUIRE_OPENGL]
//	    win64: []
//
// A scalar string is accepted wherever a list is expected. When an entry has
// both a robostack and a conda key, robostack wins.
//
// # Priority
//
// A Store is built from an ordered list of sources. For any key the entry of
// the earliest source in the list wins, and the entry is replaced as a whole.
package mapping
