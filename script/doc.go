/*
Package script is the binding layer between the mat and ml packages
and the embedded JavaScript interpreter. It registers the Mat and
ParamGrid constructors together with the usual computer vision
constants inside an otto VM, compiles user scripts and runs them,
optionally through a pool of VM clones.
*/
package script
