package schema

// defaultFrameworks returns the driver-framework callback facts.
// Order matters: records are emitted in this order.
func defaultFrameworks() []Framework {
	return []Framework{
		{
			Name: "usb_driver",
			Callbacks: []Callback{
				{
					Name:    "probe",
					Trigger: "USB 设备插入且 ID 匹配",
					Context: "进程上下文（可睡眠）",
					CallChain: []string{
						"usb_hub_port_connect (drivers/usb/core/hub.c)",
						"usb_new_device",
						"device_add (drivers/base/core.c)",
						"bus_probe_device",
						"driver_probe_device (drivers/base/dd.c)",
						"really_probe",
						"usb_probe_interface (drivers/usb/core/driver.c)",
						"drv->probe()",
					},
					Note: "注意：不是 insmod 时调用，而是设备插入后异步调用",
				},
				{
					Name:    "disconnect",
					Trigger: "USB 设备拔出",
					Context: "进程上下文（可睡眠）",
					CallChain: []string{
						"usb_disconnect (drivers/usb/core/hub.c)",
						"device_del",
						"bus_remove_device",
						"drv->disconnect()",
					},
				},
				{
					Name:    "suspend",
					Trigger: "系统休眠或 USB 自动挂起",
					Context: "进程上下文",
					CallChain: []string{
						"pm_suspend", "dpm_suspend", "usb_suspend_interface", "drv->suspend()",
					},
				},
				{
					Name:    "resume",
					Trigger: "系统唤醒或 USB 自动恢复",
					Context: "进程上下文",
					CallChain: []string{
						"pm_resume", "dpm_resume", "usb_resume_interface", "drv->resume()",
					},
				},
			},
		},
		{
			Name: "platform_driver",
			Callbacks: []Callback{
				{
					Name:    "probe",
					Trigger: "设备树匹配 / platform_device_register / ACPI",
					Context: "进程上下文",
					CallChain: []string{
						"platform_device_add (drivers/base/platform.c)",
						"device_add",
						"bus_probe_device",
						"really_probe (drivers/base/dd.c)",
						"platform_drv_probe",
						"drv->probe()",
					},
				},
				{
					Name:    "remove",
					Trigger: "设备移除或模块卸载",
					Context: "进程上下文",
					CallChain: []string{
						"platform_device_del", "device_del", "drv->remove()",
					},
				},
				{
					Name:    "suspend",
					Trigger: "系统休眠",
					Context: "进程上下文",
					CallChain: []string{
						"pm_suspend", "dpm_suspend", "platform_pm_suspend", "drv->suspend()",
					},
				},
				{
					Name:    "resume",
					Trigger: "系统唤醒",
					Context: "进程上下文",
					CallChain: []string{
						"pm_resume", "dpm_resume", "platform_pm_resume", "drv->resume()",
					},
				},
			},
		},
		{
			Name: "pci_driver",
			Callbacks: []Callback{
				{
					Name:    "probe",
					Trigger: "PCI 设备发现且 ID 匹配",
					Context: "进程上下文",
					CallChain: []string{
						"pci_device_add (drivers/pci/probe.c)",
						"device_add",
						"bus_probe_device",
						"really_probe",
						"pci_device_probe (drivers/pci/pci-driver.c)",
						"drv->probe()",
					},
				},
				{
					Name:    "remove",
					Trigger: "PCI 设备移除或模块卸载",
					Context: "进程上下文",
					CallChain: []string{
						"pci_stop_and_remove_bus_device", "device_del", "drv->remove()",
					},
				},
			},
		},
		{
			Name: "i2c_driver",
			Callbacks: []Callback{
				{
					Name:    "probe",
					Trigger: "I2C 设备匹配（设备树/ACPI/手动注册）",
					Context: "进程上下文",
					CallChain: []string{
						"i2c_device_register (drivers/i2c/i2c-core-base.c)",
						"device_add",
						"bus_probe_device",
						"really_probe",
						"i2c_device_probe",
						"drv->probe()",
					},
				},
			},
		},
		{
			Name: "spi_driver",
			Callbacks: []Callback{
				{
					Name:    "probe",
					Trigger: "SPI 设备匹配",
					Context: "进程上下文",
					CallChain: []string{
						"spi_add_device", "device_add", "bus_probe_device", "drv->probe()",
					},
				},
			},
		},
		{
			Name: "file_operations",
			Callbacks: []Callback{
				{
					Name:    "open",
					Trigger: "用户调用 open() 系统调用",
					Context: "进程上下文",
					CallChain: []string{
						"sys_open / sys_openat (fs/open.c)",
						"do_sys_open",
						"do_filp_open",
						"path_openat",
						"vfs_open",
						"do_dentry_open (fs/open.c)",
						"f_op->open()",
					},
				},
				{
					Name:    "read",
					Trigger: "用户调用 read() 系统调用",
					Context: "进程上下文",
					CallChain: []string{
						"sys_read (fs/read_write.c)",
						"ksys_read",
						"vfs_read",
						"f_op->read() / f_op->read_iter()",
					},
				},
				{
					Name:    "write",
					Trigger: "用户调用 write() 系统调用",
					Context: "进程上下文",
					CallChain: []string{
						"sys_write (fs/read_write.c)",
						"ksys_write",
						"vfs_write",
						"f_op->write() / f_op->write_iter()",
					},
				},
				{
					Name:    "unlocked_ioctl",
					Trigger: "用户调用 ioctl() 系统调用",
					Context: "进程上下文",
					CallChain: []string{
						"sys_ioctl (fs/ioctl.c)",
						"do_vfs_ioctl",
						"vfs_ioctl",
						"f_op->unlocked_ioctl()",
					},
				},
				{
					Name:    "mmap",
					Trigger: "用户调用 mmap() 系统调用",
					Context: "进程上下文",
					CallChain: []string{
						"sys_mmap (mm/mmap.c)",
						"ksys_mmap_pgoff",
						"vm_mmap_pgoff",
						"do_mmap",
						"mmap_region",
						"call_mmap",
						"f_op->mmap()",
					},
					Note: "mmap 后首次访问会触发缺页中断",
				},
				{
					Name:    "poll",
					Trigger: "用户调用 poll()/select()/epoll_wait()",
					Context: "进程上下文",
					CallChain: []string{
						"sys_poll / sys_epoll_wait",
						"do_poll / ep_poll",
						"vfs_poll",
						"f_op->poll()",
					},
				},
				{
					Name:    "release",
					Trigger: "文件描述符关闭（最后一个引用）",
					Context: "进程上下文",
					CallChain: []string{
						"sys_close (fs/open.c)",
						"__close_fd",
						"filp_close",
						"__fput",
						"f_op->release()",
					},
				},
				{
					Name:    "fsync",
					Trigger: "用户调用 fsync()/fdatasync()",
					Context: "进程上下文",
					CallChain: []string{
						"sys_fsync", "vfs_fsync", "f_op->fsync()",
					},
				},
			},
		},
		{
			Name: "net_device_ops",
			Callbacks: []Callback{
				{
					Name:    "ndo_open",
					Trigger: "ifconfig up / ip link set up",
					Context: "进程上下文",
					CallChain: []string{
						"dev_open (net/core/dev.c)",
						"__dev_open",
						"ops->ndo_open()",
					},
				},
				{
					Name:    "ndo_stop",
					Trigger: "ifconfig down / ip link set down",
					Context: "进程上下文",
					CallChain: []string{
						"dev_close", "__dev_close", "ops->ndo_stop()",
					},
				},
				{
					Name:    "ndo_start_xmit",
					Trigger: "数据包发送",
					Context: "软中断上下文或进程上下文",
					CallChain: []string{
						"send() / sendto() / sendmsg()",
						"协议栈处理 (TCP/UDP/IP)",
						"dev_queue_xmit (net/core/dev.c)",
						"__dev_queue_xmit",
						"dev_hard_start_xmit",
						"ops->ndo_start_xmit()",
					},
					Note: "高性能场景可能在软中断中调用",
				},
				{
					Name:    "ndo_set_rx_mode",
					Trigger: "设置多播/混杂模式",
					Context: "进程上下文",
					CallChain: []string{
						"dev_set_rx_mode", "ops->ndo_set_rx_mode()",
					},
				},
			},
		},
		{
			Name: "block_device_operations",
			Callbacks: []Callback{
				{
					Name:    "open",
					Trigger: "打开块设备",
					Context: "进程上下文",
					CallChain: []string{
						"blkdev_open", "bdev_open_by_dev", "ops->open()",
					},
				},
				{
					Name:    "release",
					Trigger: "关闭块设备",
					Context: "进程上下文",
					CallChain: []string{
						"blkdev_close", "ops->release()",
					},
				},
				{
					Name:    "ioctl",
					Trigger: "块设备 ioctl",
					Context: "进程上下文",
					CallChain: []string{
						"blkdev_ioctl", "ops->ioctl()",
					},
				},
			},
		},
		{
			Name: "blk_mq_ops",
			Callbacks: []Callback{
				{
					Name:    "queue_rq",
					Trigger: "I/O 请求入队",
					Context: "进程上下文或软中断",
					CallChain: []string{
						"submit_bio (block/blk-core.c)",
						"blk_mq_submit_bio",
						"blk_mq_try_issue_directly / blk_mq_sched_insert_request",
						"ops->queue_rq()",
					},
				},
				{
					Name:    "complete",
					Trigger: "I/O 请求完成（通常由中断触发）",
					Context: "中断上下文或软中断",
					CallChain: []string{
						"硬件中断",
						"blk_mq_complete_request (block/blk-mq.c)",
						"ops->complete()",
					},
				},
			},
		},
	}
}
