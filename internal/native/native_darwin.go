//go:build darwin

// Package native owns references to reference-counted OS objects.
package native

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreFoundation -framework Foundation

#include <CoreFoundation/CoreFoundation.h>
#import <Foundation/Foundation.h>

static void *inputkit_cf_retain(void *p) {
	return (void *)CFRetain((CFTypeRef)p);
}

static void inputkit_cf_release(void *p) {
	CFRelease((CFTypeRef)p);
}

static void *inputkit_ns_retain(void *p) {
	return [(id)p retain];
}

static void inputkit_ns_release(void *p) {
	[(id)p release];
}
*/
import "C"

import "unsafe"

// CF takes ownership of one reference to a Core Foundation object.
func CF(ptr unsafe.Pointer) (*Ref, bool) {
	return Wrap(ptr, cfRetain, cfRelease)
}

// NS takes ownership of one reference to a Cocoa object.
func NS(ptr unsafe.Pointer) (*Ref, bool) {
	return Wrap(ptr, nsRetain, nsRelease)
}

// cfRetain calls CFRetain on the object.
func cfRetain(p unsafe.Pointer) unsafe.Pointer {
	return C.inputkit_cf_retain(p)
}

// cfRelease calls CFRelease on the object.
func cfRelease(p unsafe.Pointer) {
	C.inputkit_cf_release(p)
}

// nsRetain sends a retain message to the object.
func nsRetain(p unsafe.Pointer) unsafe.Pointer {
	return C.inputkit_ns_retain(p)
}

// nsRelease sends a release message to the object.
func nsRelease(p unsafe.Pointer) {
	C.inputkit_ns_release(p)
}
