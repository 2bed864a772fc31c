// This file is part of Falcongfx.
//
// Falcongfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Falcongfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Falcongfx.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the storage of preference values on disk and
// the overriding of those values from the command line.
//
// Preference values are represented by the Bool, Int, Float and String types.
// Each type supports pre and post hooks which are called whenever the value
// is set. Hooks are a convenient way of applying a changed preference to a
// running component.
//
// A Disk instance collects preference values under a key and saves them to
// (or loads them from) a single file. Keys are normally written in a
// dotted form, for example "graphics.vsync". More than one Disk instance can
// use the same file without clobbering the values of the other instances.
//
// The command line stack allows preference values to be specified with a
// string of the form "key::value; key::value". Values in the top group of the
// stack are applied by Disk.Add() and are consumed as they are applied.
package prefs
